package domain

import "fmt"

// PermissionStatus mirrors the OS-level notification authorization.
type PermissionStatus string

const (
	PermissionUndetermined PermissionStatus = "undetermined"
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	// PermissionProvisional is the quiet authorization some platforms hand
	// out without an explicit prompt. Scheduling treats it as granted.
	PermissionProvisional PermissionStatus = "provisional"
)

// Authorized reports whether the status allows scheduling notifications.
func (s PermissionStatus) Authorized() bool {
	return s == PermissionGranted || s == PermissionProvisional
}

func (s PermissionStatus) String() string { return string(s) }

// ParsePermissionStatus restores a status from its persisted string form.
// Unknown values map to undetermined rather than failing.
func ParsePermissionStatus(s string) PermissionStatus {
	switch PermissionStatus(s) {
	case PermissionGranted, PermissionDenied, PermissionProvisional:
		return PermissionStatus(s)
	default:
		return PermissionUndetermined
	}
}

// Preference is the user's persisted tri-state choice on reminders. It is
// distinct from PermissionStatus: the preference records what the user asked
// for in-app, the status records what the OS allows.
type Preference string

const (
	PreferenceAllowed       Preference = "allowed"
	PreferenceDenied        Preference = "denied"
	PreferenceNotDetermined Preference = "not-determined"
)

func (p Preference) String() string { return string(p) }

// ParsePreference parses the persisted wire form of a Preference.
func ParsePreference(s string) (Preference, error) {
	switch Preference(s) {
	case PreferenceAllowed, PreferenceDenied, PreferenceNotDetermined:
		return Preference(s), nil
	default:
		return PreferenceNotDetermined, fmt.Errorf("%w: unknown reminder preference %q", ErrInvalidInput, s)
	}
}
