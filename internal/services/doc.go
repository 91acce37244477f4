// Package services defines the shared error taxonomy used by every
// component that talks to an external chain tool, plus context helpers
// for correlating log output across one workflow pass.
package services
