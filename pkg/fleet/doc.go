// Package fleet implements the shotty commands on top of a cloud provider.
//
// The controller only sees the provider through InstanceSource, VolumeSource
// and SnapshotSource. Every command iterates the filtered instances once, in
// the order the provider returns them, and writes one line per record to the
// configured writer.
//
// Stop and start isolate per-instance *models.ClientError failures and carry
// on with the next instance. The snapshot workflow does not: any error aborts
// the remaining batch with the output printed so far.
//
// There is no locking between the pending-snapshot check and the snapshot
// request. A snapshot started by someone else in between is not detected.
package fleet
