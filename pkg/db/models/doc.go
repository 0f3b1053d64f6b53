// Package models is the canonical entity schema contract: every persisted
// entity, its full field set, and its nullability, independent of the storage
// engine behind it. The structs double as the GORM mapping used by the
// repositories, and the SQL migration under pkg/migrate/migrations mirrors
// them one-to-one.
//
// Relations are documented here and enforced as foreign keys by the database,
// not by this package:
//
//	teams.created_by            -> users.id
//	team_members.team_id        -> teams.id
//	team_members.user_id        -> users.id
//	posts.created_by            -> users.id
//	posts.team_id               -> teams.id
//	templates.created_by        -> users.id
//	templates.team_id           -> teams.id
//	documents.uploaded_by       -> users.id
//	documents.team_id           -> teams.id
//	calendar_events.post_id     -> posts.id (optional)
//	calendar_events.created_by  -> users.id
//	calendar_events.team_id     -> teams.id
//	social_accounts.connected_by-> users.id
//	social_accounts.team_id     -> teams.id
//	analytics.post_id           -> posts.id
//	notifications.user_id       -> users.id
//	activity_logs.user_id       -> users.id
//
// Users and Teams are top-level aggregates. Every team-scoped entity (Post,
// Template, Document, CalendarEvent, SocialAccount) belongs to exactly one
// team and one creating user. Analytics and ActivityLog rows are append-only.
package models
