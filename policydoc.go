// Package policydoc scrapes an insurer's policy documents listing page.
// It extracts the name, UIN and policy type of each document link,
// downloads the linked PDFs and records the metadata in a CSV table.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, csv/).
package policydoc
