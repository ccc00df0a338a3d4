// Package entities provides the data model for theta-arc: species and boss
// catalogs, player accounts with their instances and Astral placements, and
// the transient encounter, offer, spawn and party records.
package entities
