package constants

// ContextKeyUserID is the key used for the authenticated user ID in both the
// session and the gin context.
const ContextKeyUserID = "user_id"

// SessionCookieName is the name of the session cookie.
const SessionCookieName = "crm_session"

// PageSize is the fixed number of records per list page.
const PageSize = 25

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8
