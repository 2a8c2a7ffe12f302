// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobSource identifies where a posting originated.
type JobSource string

const (
	// JobSourceTwitter marks postings ingested from Twitter.
	JobSourceTwitter JobSource = "twitter"
	// JobSourceLinkedIn marks postings ingested from LinkedIn.
	JobSourceLinkedIn JobSource = "linkedin"
	// JobSourceManual marks postings created by an administrator.
	JobSourceManual JobSource = "manual"
)

// String returns the string representation of the JobSource.
func (s JobSource) String() string {
	return string(s)
}

// IsValid checks if the JobSource is a valid value.
func (s JobSource) IsValid() bool {
	switch s {
	case JobSourceTwitter, JobSourceLinkedIn, JobSourceManual:
		return true
	default:
		return false
	}
}

// DefaultJobCategory is assigned when a posting is created without a category.
const DefaultJobCategory = "General"

// Job is a single job posting with its legacy link aliases and the public
// tracking counters.
//
// The four link fields (ApplyLink, JobURL, URL, Link) historically stored the
// same apply URL for different ingestion sources. They must stay identical
// whenever the primary ApplyLink changes; use SetApplyLink for any mutation.
type Job struct {
	ID           uuid.UUID // Internal database identifier.
	JobID        string    // Business identifier, unique; "manual-<unix-ms>" for manual postings.
	Title        string    // Job title. Required.
	EmployerName string    // Employer display name. Required.
	EmployerLogo string    // Employer logo URL.
	City         string
	Country      string
	ContactEmail string    // Contact email extracted from the posting, if any.
	WorkMode     string    // e.g. "remote", "hybrid".
	ApplyLink    string    // Primary apply URL. Required on creation.
	JobURL       string    // Link alias, mirrors ApplyLink.
	URL          string    // Link alias, mirrors ApplyLink.
	Link         string    // Link alias, mirrors ApplyLink.
	Text         string    // Free-text body of the posting.
	Source       JobSource // Origin of the posting.
	Category     string    // Defaults to DefaultJobCategory.
	PostedAt     time.Time // Publication timestamp.
	UpdatedBy    string    // Name of the editor attributed with the last change.
	Views        int64     // Public view counter.
	Clicks       int64     // Public click counter.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SetApplyLink sets the primary apply link and mirrors it into every legacy
// alias field, keeping all four identical.
func (j *Job) SetApplyLink(link string) {
	j.ApplyLink = link
	j.JobURL = link
	j.URL = link
	j.Link = link
}

// TrackingEvent is a public-facing analytics event type.
type TrackingEvent string

const (
	// TrackingEventView increments the view counter of a posting.
	TrackingEventView TrackingEvent = "view"
	// TrackingEventClick increments the click counter of a posting.
	TrackingEventClick TrackingEvent = "click"
)

// String returns the string representation of the TrackingEvent.
func (e TrackingEvent) String() string {
	return string(e)
}

// IsValid checks if the TrackingEvent is a valid value.
func (e TrackingEvent) IsValid() bool {
	return e == TrackingEventView || e == TrackingEventClick
}
