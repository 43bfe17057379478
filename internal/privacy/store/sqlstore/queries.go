package sqlstore

import "strings"

var settingsColumns = []string{
	"id", "user_id",
	"profile_visibility", "show_email", "show_phone", "show_location", "show_website", "show_bio", "show_avatar",
	"activity_visibility", "show_posts", "show_events", "show_services", "show_followers", "show_following",
	"allow_messages_from", "allow_follow_requests", "allow_event_invites", "allow_service_requests",
	"searchable", "show_in_suggestions", "show_in_leaderboard",
	"analytics_enabled", "personalization_enabled", "marketing_emails",
	"anonymous_mode", "anonymous_posts", "anonymous_comments", "anonymous_votes",
	"location_sharing", "precise_location", "location_history",
	"created_at", "updated_at",
}

var preferencesColumns = []string{
	"id", "user_id",
	"auto_anonymous_mode", "default_privacy_level", "default_location_sharing",
	"allow_identity_reveal", "anonymous_notifications", "anonymous_analytics",
	"created_at", "updated_at",
}

const handleColumns = "id, user_id, handle, display_name, is_active, created_at"

type queries struct {
	getSettings    string
	seedSettings   string
	lockSettings   string
	upsertSettings string

	getPreferences    string
	seedPreferences   string
	lockPreferences   string
	upsertPreferences string

	lockUserHandles    string
	listActiveHandles  string
	countActiveHandles string
	activeHandleExists string
	createHandle       string
	getHandle          string
	handleOwned        string
	deactivateHandle   string

	getProfile    string
	updateProfile string
	createProfile string
}

func buildQueries(d Dialect) *queries {
	getSettings := "SELECT " + strings.Join(settingsColumns, ", ") + " FROM privacy_settings WHERE user_id = ?"
	getPreferences := "SELECT " + strings.Join(preferencesColumns, ", ") + " FROM anonymous_preferences WHERE user_id = ?"

	q := &queries{
		getSettings:    getSettings,
		seedSettings:   insertIfAbsentSQL("privacy_settings", settingsColumns),
		lockSettings:   getSettings + d.ForUpdate(),
		upsertSettings: upsertSQL("privacy_settings", settingsColumns),

		getPreferences:    getPreferences,
		seedPreferences:   insertIfAbsentSQL("anonymous_preferences", preferencesColumns),
		lockPreferences:   getPreferences + d.ForUpdate(),
		upsertPreferences: upsertSQL("anonymous_preferences", preferencesColumns),

		lockUserHandles: d.UserLock("anonymous_handles"),

		listActiveHandles: "SELECT " + handleColumns + ` FROM anonymous_handles
			WHERE user_id = ? AND is_active = TRUE
			ORDER BY created_at DESC, id DESC`,
		countActiveHandles: `SELECT COUNT(*) FROM anonymous_handles WHERE user_id = ? AND is_active = TRUE`,
		activeHandleExists: `SELECT EXISTS (
			SELECT 1 FROM anonymous_handles WHERE user_id = ? AND handle_key = ? AND is_active = TRUE
		)`,
		createHandle: `INSERT INTO anonymous_handles (id, user_id, handle, handle_key, display_name, is_active, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		getHandle:        "SELECT " + handleColumns + " FROM anonymous_handles WHERE user_id = ? AND id = ?",
		handleOwned:      `SELECT EXISTS (SELECT 1 FROM anonymous_handles WHERE user_id = ? AND id = ?)`,
		deactivateHandle: `UPDATE anonymous_handles SET is_active = FALSE WHERE user_id = ? AND id = ?`,

		getProfile: `SELECT user_id, real_name, real_name_visibility, is_anonymous, updated_at
			FROM profiles WHERE user_id = ?`,
		updateProfile: `UPDATE profiles
			SET real_name = ?, real_name_visibility = ?, is_anonymous = ?, updated_at = ?
			WHERE user_id = ?`,
		createProfile: `INSERT INTO profiles (user_id, real_name, real_name_visibility, is_anonymous, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
	}

	for _, s := range []*string{
		&q.getSettings, &q.seedSettings, &q.lockSettings, &q.upsertSettings,
		&q.getPreferences, &q.seedPreferences, &q.lockPreferences, &q.upsertPreferences,
		&q.lockUserHandles, &q.listActiveHandles, &q.countActiveHandles, &q.activeHandleExists,
		&q.createHandle, &q.getHandle, &q.handleOwned, &q.deactivateHandle,
		&q.getProfile, &q.updateProfile, &q.createProfile,
	} {
		*s = rebind(d, *s)
	}
	return q
}

// insertIfAbsentSQL builds an INSERT keyed on user_id that leaves an existing
// row untouched.
func insertIfAbsentSQL(table string, cols []string) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES (" + marks + ")" +
		" ON CONFLICT (user_id) DO NOTHING"
}

// upsertSQL builds an INSERT keyed on user_id that overwrites every column
// except id, user_id and created_at on conflict.
func upsertSQL(table string, cols []string) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")

	var set []string
	for _, c := range cols {
		switch c {
		case "id", "user_id", "created_at":
			continue
		}
		set = append(set, c+" = excluded."+c)
	}

	return "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES (" + marks + ")" +
		" ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(set, ", ")
}
