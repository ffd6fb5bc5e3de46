// Package strutil provides casing helpers used when mapping between markup
// attribute names and Go or script identifiers.
//
// Camelize turns kebab-case names such as "background-color" into
// "backgroundColor". Capitalize upper-cases the first character of a string and
// leaves the rest untouched; upper-casing follows Unicode special casing rules
// via golang.org/x/text/cases, so a leading "ß" becomes "SS".
package strutil
