// Package password obtains the password a post is sealed with.
//
// The encryption pipeline depends only on the Source capability. A password
// embedded in the front matter always wins; otherwise the command builds a
// Chain of fallbacks, typically an environment variable followed by an
// interactive double-entry prompt:
//
//	src := password.Chain{
//	    password.EnvSource{Name: "SEALPOST_PASSWORD"},
//	    password.NewPromptSource(),
//	}
//	pw, from, err := password.Resolve(src)
//
// Sources that have nothing to offer return ErrNoPasswordSource so the chain
// moves on. Validation failures (ErrEmptyPassword, ErrPasswordMismatch) stop
// the chain immediately.
package password
