// Package pullrequests holds the checkout suite that is opened, reviewed
// and merged as a pull request.
package pullrequests
