// Package diag defines diagnostic codes, severities, and the Bag/Reporter
// plumbing shared by every compiler phase. Diagnostics never alter phase
// control flow; phases report and keep going.
package diag
