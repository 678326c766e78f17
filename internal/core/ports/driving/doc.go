// Package driving defines the inbound port interfaces for docmirror.
//
// Driving ports are implemented by core services and consumed by the
// CLI adapter.
package driving
