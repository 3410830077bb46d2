// Package frontmatter splits a post into its front matter and body.
//
// A post starts with a front matter block delimited by "---" lines:
//
//	---
//	title: Hello
//	secret: true
//	password: hunter2
//	---
//	Post body...
//
// Split returns the block verbatim, including both delimiters and the line
// break that follows the closing one. Everything after it is the body.
//
// ExtractPassword removes the `password:` field so the rewritten post never
// carries a plaintext password, and IsSecret reports whether the post opted
// in to encryption.
package frontmatter
