// Package textutil turns arbitrary file names into filesystem-safe ASCII.
//
// Normalize applies a fixed Cyrillic to Latin transliteration table (Russian
// and Ukrainian letters, readable rather than academically exact) and then
// replaces everything outside [A-Za-z0-9.] with an underscore. Input is
// composed to NFC first so decomposed letters from some filesystems map the
// same way as their precomposed forms.
package textutil
