// ABOUTME: Built-in seed dataset for the workbench
// ABOUTME: Provides the reference video catalog, starter briefs, and trending searches
package models

import "time"

// Public-domain assets so playback links stay resolvable.
const (
	bbbVideo    = "https://test-videos.co.uk/vids/bigbuckbunny/mp4/av1/360/Big_Buck_Bunny_360_10s_1MB.mp4"
	bbbThumb    = "https://upload.wikimedia.org/wikipedia/commons/7/70/Big.Buck.Bunny.-.Opening.Screen.png"
	sintelVideo = "https://demo.unified-streaming.com/k8s/features/stable/video/tears-of-steel/tears-of-steel.ism/.m3u8"
	sintelThumb = "https://upload.wikimedia.org/wikipedia/commons/thumb/8/8f/Sintel_poster.jpg/640px-Sintel_poster.jpg"
	flowerVideo = "https://devstreaming-cdn.apple.com/videos/streaming/examples/img_bipbop_adv_example_fmp4/master.m3u8"
	flowerThumb = "https://interactive-examples.mdn.mozilla.net/media/cc0-images/flower.jpg"
)

// TrendingSearches seeds the empty-search state of the workspace.
var TrendingSearches = []string{
	"UGC hooks for skincare brands",
	"High-converting TikTok ads fitness",
	"Pet supplement video ads",
	"DTC fashion founder stories",
	"ASMR product unboxing templates",
	"Subscription box ad creatives",
}

// SeedVideos returns a fresh copy of the reference catalog. Callers own the
// returned slice; the catalog itself is never mutated by the store.
func SeedVideos() []VideoItem {
	return []VideoItem{
		{
			ID: "v1", Title: "Big Buck Bunny - Animated Story", Brand: "Blender Inc",
			Platform: PlatformMeta, Category: "Animation",
			Thumbnail: bbbThumb, VideoURL: bbbVideo, Duration: 596,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 10, Type: ZoneHook, Label: "Intro Hook"},
				{Start: 20, End: 40, Type: ZoneProof, Label: "Story Arc"},
				{Start: 80, End: 100, Type: ZoneCTA, Label: "Credits"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "A giant rabbit with a heart bigger than himself."},
				{Time: 10, Text: "The rodents are harassing him."},
				{Time: 30, Text: "Revenge time!"},
			},
			Spend: "$45K", Impressions: "2.3M", CTR: "2.8%",
			EngagementRate: "6.4%", HookRate: "78%", PerformanceTier: TierTop,
		},
		{
			ID: "v2", Title: "Sintel - Fantasy Story", Brand: "Blender Inc",
			Platform: PlatformTikTok, Category: "Sci-Fi",
			Thumbnail: sintelThumb, VideoURL: sintelVideo, Duration: 653,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 15, Type: ZoneHook, Label: "Visual Hook"},
				{Start: 30, End: 60, Type: ZoneProof, Label: "Action Sequence"},
				{Start: 90, End: 100, Type: ZoneCTA, Label: "Visit Site"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "The first Blender Open Movie from 2006"},
				{Time: 20, Text: "Exploring the machine..."},
				{Time: 60, Text: "Conflict arises."},
			},
			Spend: "$28K", Impressions: "1.8M", CTR: "2.1%",
			EngagementRate: "5.2%", HookRate: "65%", PerformanceTier: TierHigh,
		},
		{
			ID: "v3", Title: "Nature - Blooming Flower", Brand: "MDN",
			Platform: PlatformMeta, Category: "Nature",
			Thumbnail: flowerThumb, VideoURL: flowerVideo, Duration: 15,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 20, Type: ZoneHook, Label: "Feature Hook"},
				{Start: 40, End: 60, Type: ZoneProof, Label: "Demo"},
				{Start: 80, End: 100, Type: ZoneCTA, Label: "Shop Now"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "Watch nature unfold."},
				{Time: 5, Text: "A beautiful bloom in seconds."},
				{Time: 10, Text: "Nature is amazing."},
			},
			Spend: "$62K", Impressions: "4.1M", CTR: "3.4%",
			EngagementRate: "8.1%", HookRate: "82%", PerformanceTier: TierTop,
		},
		{
			ID: "v4", Title: "Big Buck Bunny - Short", Brand: "Blender Inc",
			Platform: PlatformTikTok, Category: "Animation",
			Thumbnail: bbbThumb, VideoURL: bbbVideo, Duration: 15,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 20, Type: ZoneHook, Label: "Adventure Hook"},
				{Start: 40, End: 60, Type: ZoneProof, Label: "Feature Demo"},
				{Start: 80, End: 100, Type: ZoneCTA, Label: "Learn More"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "The bunny creates a trap."},
				{Time: 5, Text: "But will it work?"},
				{Time: 10, Text: "Watch the full movie."},
			},
			Spend: "$33K", Impressions: "2.9M", CTR: "1.9%",
			EngagementRate: "7.3%", HookRate: "71%", PerformanceTier: TierHigh,
		},
		{
			ID: "v5", Title: "Sintel - Trailer", Brand: "Blender Inc",
			Platform: PlatformYouTube, Category: "Sci-Fi",
			Thumbnail: sintelThumb, VideoURL: sintelVideo, Duration: 60,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 15, Type: ZoneHook, Label: "Fun Hook"},
				{Start: 30, End: 60, Type: ZoneProof, Label: "Experience"},
				{Start: 80, End: 100, Type: ZoneCTA, Label: "Get Yours"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "A girl on a journey."},
				{Time: 5, Text: "Searching for her dragon."},
				{Time: 10, Text: "Against all odds."},
			},
			Spend: "$55K", Impressions: "3.7M", CTR: "1.5%",
			EngagementRate: "4.8%", HookRate: "58%", PerformanceTier: TierMid,
		},
		{
			ID: "v6", Title: "Nature - Springtime", Brand: "MDN",
			Platform: PlatformMeta, Category: "Nature",
			Thumbnail: flowerThumb, VideoURL: flowerVideo, Duration: 15,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 20, Type: ZoneHook, Label: "Joyride Hook"},
				{Start: 40, End: 60, Type: ZoneProof, Label: "Car Feature"},
				{Start: 80, End: 100, Type: ZoneCTA, Label: "Drive Now"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "Colors of spring."},
				{Time: 5, Text: "Vibrant and full of life."},
				{Time: 10, Text: "Enjoy the view."},
			},
			Spend: "$19K", Impressions: "1.2M", CTR: "1.2%",
			EngagementRate: "3.5%", HookRate: "52%", PerformanceTier: TierMid,
		},
		{
			ID: "v7", Title: "Big Buck Bunny - Chase", Brand: "Blender Inc",
			Platform: PlatformTikTok, Category: "Animation",
			Thumbnail: bbbThumb, VideoURL: bbbVideo, Duration: 15,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 20, Type: ZoneHook, Label: "Drama Hook"},
				{Start: 40, End: 60, Type: ZoneProof, Label: "Solution"},
				{Start: 80, End: 100, Type: ZoneCTA, Label: "Watch Now"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "The chase is on."},
				{Time: 5, Text: "Running through the forest."},
				{Time: 10, Text: "Who will win?"},
			},
			Spend: "$41K", Impressions: "3.2M", CTR: "2.5%",
			EngagementRate: "6.8%", HookRate: "74%", PerformanceTier: TierHigh,
		},
		{
			ID: "v8", Title: "Sintel - The Search", Brand: "Blender Inc",
			Platform: PlatformMeta, Category: "Animation",
			Thumbnail: sintelThumb, VideoURL: sintelVideo, Duration: 888,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 10, Type: ZoneHook, Label: "Opening Scene"},
				{Start: 20, End: 50, Type: ZoneProof, Label: "Journey"},
				{Start: 80, End: 100, Type: ZoneCTA, Label: "Donate"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "Walking through the snow."},
				{Time: 20, Text: "Finding clues."},
				{Time: 60, Text: "The dragon is near."},
			},
			Spend: "$72K", Impressions: "5.8M", CTR: "3.1%",
			EngagementRate: "7.9%", HookRate: "81%", PerformanceTier: TierTop,
		},
		{
			ID: "v9", Title: "Nature - Growth", Brand: "MDN",
			Platform: PlatformTikTok, Category: "Nature",
			Thumbnail: flowerThumb, VideoURL: flowerVideo, Duration: 15,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 20, Type: ZoneHook, Label: "Action Hook"},
				{Start: 40, End: 60, Type: ZoneProof, Label: "Off-road Demo"},
				{Start: 80, End: 100, Type: ZoneCTA, Label: "Test Drive"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "From seed to flower."},
				{Time: 5, Text: "The power of sun and water."},
				{Time: 10, Text: "Life finds a way."},
			},
			Spend: "$38K", Impressions: "4.5M", CTR: "3.6%",
			EngagementRate: "9.2%", HookRate: "85%", PerformanceTier: TierTop,
		},
		{
			ID: "v10", Title: "Big Buck Bunny - Final", Brand: "Blender Inc",
			Platform: PlatformYouTube, Category: "Animation",
			Thumbnail: bbbThumb, VideoURL: bbbVideo, Duration: 734,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 15, Type: ZoneHook, Label: "VFX Hook"},
				{Start: 30, End: 60, Type: ZoneProof, Label: "Bot Action"},
				{Start: 85, End: 100, Type: ZoneCTA, Label: "Behind the Scenes"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "The end of the story."},
				{Time: 10, Text: "Peace returns to the forest."},
				{Time: 20, Text: "Or does it?"},
			},
			Spend: "$25K", Impressions: "1.9M", CTR: "1.8%",
			EngagementRate: "5.1%", HookRate: "62%", PerformanceTier: TierMid,
		},
		{
			ID: "v11", Title: "Sintel - Epilogue", Brand: "Volkswagen",
			Platform: PlatformMeta, Category: "Animation",
			Thumbnail: sintelThumb, VideoURL: sintelVideo, Duration: 15,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 20, Type: ZoneHook, Label: "Review Hook"},
				{Start: 40, End: 60, Type: ZoneProof, Label: "Driving"},
				{Start: 80, End: 100, Type: ZoneCTA, Label: "Specs"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "Years later."},
				{Time: 5, Text: "The dragon remembers."},
				{Time: 10, Text: "A touching reunion."},
			},
			Spend: "$51K", Impressions: "3.9M", CTR: "2.7%",
			EngagementRate: "6.5%", HookRate: "73%", PerformanceTier: TierHigh,
		},
		{
			ID: "v12", Title: "Nature - Full Bloom", Brand: "MDN",
			Platform: PlatformMeta, Category: "Nature",
			Thumbnail: flowerThumb, VideoURL: flowerVideo, Duration: 15,
			HeatmapZones: []HeatmapZone{
				{Start: 0, End: 15, Type: ZoneHook, Label: "Rally Hook"},
				{Start: 30, End: 60, Type: ZoneProof, Label: "Road Trip"},
				{Start: 80, End: 100, Type: ZoneCTA, Label: "Follow Us"},
			},
			Transcript: []TranscriptSegment{
				{Time: 0, Text: "Maximum beauty."},
				{Time: 5, Text: "Colors everywhere."},
				{Time: 10, Text: "Spring is here."},
			},
			Spend: "$12K", Impressions: "6.2M", CTR: "1.1%",
			EngagementRate: "12.4%", HookRate: "88%", PerformanceTier: TierTop,
		},
	}
}

// SeedBriefs returns the starter briefs used when no persisted state exists.
func SeedBriefs() []Brief {
	return []Brief{
		{
			ID:       "b1",
			Title:    "Skincare UGC – Q1 Campaign",
			Campaign: "LumiSkin Spring Launch",
			Angle:    "Social Proof / Before-After",
			Content: `# Skincare UGC Brief

## Objective
Create 3 UGC-style video ads showcasing real customer transformations.

## Key Messages
- **Hook:** "POV: You finally found..." pattern
- **Proof:** Before/after visuals + review count
- **CTA:** Discount code with urgency

## Script Framework
1. **0-3s:** Relatable POV hook (face-to-camera)
2. **3-8s:** Personal testimony with B-roll
3. **8-12s:** Social proof overlay (reviews, stats)
4. **12-15s:** Clear CTA with code

## Notes
- Keep lighting natural/warm
- Use trending audio for TikTok version
- Film in bathroom/vanity setting for authenticity`,
			Hooks:             []HookSnippet{},
			ReferenceVideoIDs: []string{"v1", "v3"},
			LikedVideoIDs:     []string{"v1"},
			DislikedVideoIDs:  []string{},
			Collaborators: []Collaborator{
				Owner(),
				{ID: "u2", Name: "Arjun M", Email: "arjun@team.co", Initials: "AM", Color: "#e8a838"},
			},
			CreatedAt: time.Date(2026, 2, 10, 10, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 2, 11, 14, 22, 0, 0, time.UTC),
		},
		{
			ID:       "b2",
			Title:    "Pet Supplements – Unboxing Angle",
			Campaign: "PawVitals DTC Push",
			Angle:    "Unboxing / Emotional",
			Content: `# Pet Supplements Brief

## Concept
Authentic unboxing + emotional pet reaction content.

## Target
Dog owners 25-45, concerned about senior pet health.

## Script Notes
- Show packaging details (premium feel)
- Include pet's genuine reaction
- Vet endorsement mention is key differentiator`,
			Hooks:             []HookSnippet{},
			ReferenceVideoIDs: []string{"v2"},
			LikedVideoIDs:     []string{"v2"},
			DislikedVideoIDs:  []string{},
			Collaborators:     []Collaborator{Owner()},
			CreatedAt:         time.Date(2026, 2, 8, 9, 0, 0, 0, time.UTC),
			UpdatedAt:         time.Date(2026, 2, 9, 16, 45, 0, 0, time.UTC),
		},
	}
}
