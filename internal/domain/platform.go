package domain

// PlatformProfile holds the publishing constraints and style guidance for
// one platform. Profiles are immutable, process-wide reference data used
// when building provider prompts.
type PlatformProfile struct {
	CharLimit     int
	HashtagLimit  int
	BestPractices string
}

var platformProfiles = map[Platform]PlatformProfile{
	PlatformInstagram: {
		CharLimit:     2200,
		HashtagLimit:  30,
		BestPractices: "Use emojis, line breaks, and storytelling. End with a CTA.",
	},
	PlatformLinkedIn: {
		CharLimit:     3000,
		HashtagLimit:  5,
		BestPractices: "Professional tone, use bullet points, share insights and value.",
	},
	PlatformTwitter: {
		CharLimit:     280,
		HashtagLimit:  3,
		BestPractices: "Be concise, use hooks, create threads for longer content.",
	},
	PlatformFacebook: {
		CharLimit:     63206,
		HashtagLimit:  10,
		BestPractices: "Tell stories, ask questions, encourage engagement.",
	},
	PlatformTikTok: {
		CharLimit:     2200,
		HashtagLimit:  10,
		BestPractices: "Trendy, casual, use popular hashtags and hooks.",
	},
	PlatformYouTube: {
		CharLimit:     5000,
		HashtagLimit:  15,
		BestPractices: "SEO-optimized descriptions, include timestamps and links.",
	},
}

// ProfileFor returns the publishing profile for the given platform.
// Unknown platforms fall back to the Instagram profile; callers are
// expected to have validated the platform already.
func ProfileFor(p Platform) PlatformProfile {
	if profile, ok := platformProfiles[p]; ok {
		return profile
	}
	return platformProfiles[PlatformInstagram]
}
