// Package environment names the deployment environment a program runs in.
//
// Parse normalizes the common spellings ("prod", "stage", "dev") so callers can
// switch on the three constants:
//
//	switch environment.Parse(os.Getenv("APP_ENV")) {
//	case environment.Production:
//	    // ...
//	}
//
// Unknown or empty names are treated as Development.
package environment
