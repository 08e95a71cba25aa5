// Package social normalises user-entered social handles and links into
// canonical URLs. The platform table is fixed; custom links bypass the
// platform rules and only gain a protocol when one is missing.
package social
