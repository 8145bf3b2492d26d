// Package payment gates form submission on a captured PayPal payment.
//
// Each form session has a State kept in a cache.Cache (memory or Redis).
// The browser widget drives the Gate: CreateOrder when the buyer clicks
// pay, Approve when the buyer approves (this checks the order belongs to
// the session at the fixed price, then captures it), Fail on widget errors. Submission handlers call Require before sending and Reset
// after a successful send so one payment covers one submission.
package payment
