// Package services implements the driving port interfaces.
// Services validate what the stores cannot, record each call on the
// metrics recorder and delegate to the driven ports.
//
// Services are pure Go with no CGO or external dependencies.
package services
