// Package generator assembles the plugin manifest from configuration and the
// descriptors discovered in the plugin tree, writes it, and checks whether a
// manifest on disk is up to date.
package generator
