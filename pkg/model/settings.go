package model

// AppSettings is the single free-form application state document. Readable
// by anyone, writable only by an admin session.
type AppSettings map[string]any

// SettingsDocID is the fixed id of the settings document.
const SettingsDocID = "appState"
