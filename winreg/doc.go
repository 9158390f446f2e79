// Package winreg persists environment variables in the per-user
// Windows registry key HKEY_CURRENT_USER\Environment.
//
// Values are written as REG_SZ strings. New processes started from the
// shell or Explorer read this key when they build their environment, so
// values written here outlive the writing process.
package winreg
