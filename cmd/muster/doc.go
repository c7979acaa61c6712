// Command muster builds attendance reports from meeting export CSVs: it
// resolves attendees against a roster, groups recurring meetings by
// attendee-set overlap, and prints per-group and per-student summaries.
package main
