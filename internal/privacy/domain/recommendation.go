package domain

// Advisory messages, in evaluation order.
const (
	RecommendHideEmail        = "hide email for better privacy"
	RecommendLocation         = "location sharing may compromise privacy"
	RecommendPrivateProfile   = "profile is public — consider private"
	RecommendAnonymousMode    = "enable anonymous mode"
	RecommendDisableMarketing = "disable marketing emails"
)

// Recommend evaluates the advisory rules against whatever records are
// available. A nil settings record skips the settings rules; nil
// preferences count as anonymous mode being off.
func Recommend(s *PrivacySettings, p *AnonymousPreferences) []string {
	out := []string{}

	if s != nil && s.ShowEmail {
		out = append(out, RecommendHideEmail)
	}
	if s != nil && s.ShowLocation {
		out = append(out, RecommendLocation)
	}
	if s != nil && s.ProfileVisibility == VisibilityPublic {
		out = append(out, RecommendPrivateProfile)
	}
	if p == nil || !p.AutoAnonymousMode {
		out = append(out, RecommendAnonymousMode)
	}
	if s != nil && s.MarketingEmails {
		out = append(out, RecommendDisableMarketing)
	}
	return out
}

// PrivacyScore rates settings from 0 (fully exposed) to 100 (fully private).
// Each boolean control is worth one point when set to its protective value;
// the three level controls are worth two, with the middle option worth one.
func PrivacyScore(s *PrivacySettings) int {
	if s == nil {
		return 0
	}

	exposed := []bool{
		s.ShowEmail, s.ShowPhone, s.ShowLocation, s.ShowWebsite, s.ShowBio, s.ShowAvatar,
		s.ShowPosts, s.ShowEvents, s.ShowServices, s.ShowFollowers, s.ShowFollowing,
		s.AllowFollowRequests, s.AllowEventInvites, s.AllowServiceRequests,
		s.Searchable, s.ShowInSuggestions, s.ShowInLeaderboard,
		s.AnalyticsEnabled, s.PersonalizationEnabled, s.MarketingEmails,
		s.LocationSharing, s.PreciseLocation, s.LocationHistory,
	}
	protected := []bool{s.AnonymousMode, s.AnonymousPosts, s.AnonymousComments, s.AnonymousVotes}

	points := 0
	for _, v := range exposed {
		if !v {
			points++
		}
	}
	for _, v := range protected {
		if v {
			points++
		}
	}
	points += visibilityPoints(s.ProfileVisibility) + visibilityPoints(s.ActivityVisibility)
	switch s.AllowMessagesFrom {
	case MessagesFromNone:
		points += 2
	case MessagesFromFollowers:
		points++
	}

	total := len(exposed) + len(protected) + 6
	return (points*100 + total/2) / total
}

func visibilityPoints(v Visibility) int {
	switch v {
	case VisibilityPrivate:
		return 2
	case VisibilityFriends:
		return 1
	}
	return 0
}
