// Package params maps data model objects onto the Broadband Forum parameter
// namespace.
//
// Objects are addressed by instance paths: "Device.IP.Interface.2.Enable"
// names the Enable parameter of the second entry in the Interface table.
// Table entries are numbered from 1 by their position in the slice, and an
// entry can also be addressed by its Alias parameter ("Interface.[lan].").
// NumberOfEntries parameters are not stored; they are computed from the
// length of the table they count.
//
// The operations follow the CWMP RPC methods of the same name and report
// failures as *Fault values carrying the CWMP fault code.
package params
