package service

import (
	"fmt"

	"github.com/craftlypost/craftly-api/internal/domain"
)

// Default video script duration when the request leaves it blank.
const defaultVideoDuration = "30s"

// textPostPrompts builds the system/user prompt pair for a text post.
// The system prompt carries the platform profile and the output-shape
// contract; the user prompt carries the task.
func textPostPrompts(req domain.GenerationRequest) (system, user string) {
	profile := domain.ProfileFor(req.Platform)

	system = fmt.Sprintf(`You are an expert social media content creator.
Create engaging content for %s.

Platform Guidelines:
- Character limit: %d
- Hashtag limit: %d
- Best practices: %s

Content Requirements:
- Tone: %s
- Goal: %s
- Include emojis: %t
- Generate hashtags: %t
- Include CTA: %t

Respond with valid JSON:
{
    "caption": "The main caption text",
    "hashtags": ["#hashtag1", "#hashtag2"],
    "cta": "Call to action text"
}`,
		req.Platform,
		profile.CharLimit,
		profile.HashtagLimit,
		profile.BestPractices,
		req.Tone,
		req.Goal,
		req.IncludeEmojis,
		req.IncludeHashtags,
		req.IncludeCTA,
	)

	user = fmt.Sprintf(`Create a %s social media post for %s about:

%s

Goal: %s. Make it engaging and optimized for the platform.`,
		req.Tone, req.Platform, req.Topic, req.Goal)

	return system, user
}

// imagePostPrompts builds the prompt pair for an image post, which adds a
// detailed image generation prompt to the output contract.
func imagePostPrompts(req domain.GenerationRequest) (system, user string) {
	system = fmt.Sprintf(`You are an expert social media content creator.
Create engaging content for %s with an image.

Respond with valid JSON:
{
    "caption": "The caption text",
    "hashtags": ["#hashtag1", "#hashtag2"],
    "cta": "Call to action",
    "imagePrompt": "Detailed prompt for AI image generation"
}`, req.Platform)

	user = fmt.Sprintf(`Create a %s image post for %s about:

%s

Goal: %s. Include a detailed image generation prompt.`,
		req.Tone, req.Platform, req.Topic, req.Goal)

	return system, user
}

// videoScriptPrompts builds the prompt pair for a video script, which
// requires a hook separate from the main script body.
func videoScriptPrompts(req domain.GenerationRequest) (system, user string) {
	duration := req.Duration
	if duration == "" {
		duration = defaultVideoDuration
	}

	system = fmt.Sprintf(`You are an expert video content creator.
Create a %s video script for %s.

Respond with valid JSON:
{
    "hook": "Attention-grabbing opening line",
    "script": "Main video script content",
    "cta": "Call to action at the end",
    "hashtags": ["#hashtag1", "#hashtag2"]
}`, duration, req.Platform)

	user = fmt.Sprintf(`Create a %s video script for %s about:

%s

Duration: %s
Goal: %s`,
		req.Tone, req.Platform, req.Topic, duration, req.Goal)

	return system, user
}

// ugcAdPrompts builds the prompt pair for UGC-style ad copy: a spoken-word
// script in creator voice plus a caption for the ad itself.
func ugcAdPrompts(req domain.GenerationRequest) (system, user string) {
	system = fmt.Sprintf(`You are an expert performance marketing copywriter.
Create user-generated-content style ad copy for %s.

Respond with valid JSON:
{
    "hook": "Scroll-stopping first line",
    "script": "Authentic creator-voice ad script",
    "caption": "Caption to run alongside the ad",
    "cta": "Call to action",
    "hashtags": ["#hashtag1", "#hashtag2"]
}`, req.Platform)

	user = fmt.Sprintf(`Create %s UGC ad copy for %s about:

%s

Goal: %s. Sound like a real customer, not a brand.`,
		req.Tone, req.Platform, req.Topic, req.Goal)

	return system, user
}
