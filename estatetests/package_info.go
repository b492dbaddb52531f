// Package estatetests contains the ClickEstate API contract tests themselves.
//
// Infrastructure that is not specific to ClickEstate, such as making requests, holding the
// bearer token, and recording results, is in the lower-level framework package.
package estatetests
