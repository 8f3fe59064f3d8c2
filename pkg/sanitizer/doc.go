// Package sanitizer normalizes user-supplied booking fields before
// validation and storage.
//
// All functions are idempotent - applying them multiple times produces the
// same result. Invalid input is handled gracefully, typically by returning
// the cleaned remainder rather than an error.
//
// Normalization includes:
//   - Names: collapse whitespace, title-case each word - "  ana  maria "
//     becomes "Ana Maria"
//   - Phone numbers: strip everything but digits and a leading plus
//   - Tokens (machine ids, dates, times): trim and remove inner whitespace
package sanitizer
