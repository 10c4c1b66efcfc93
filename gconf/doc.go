/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension owns at most one configuration record, stored as a singleton
under the "_c:<package name>" key. Records are protobuf messages that can
validate themselves. A record is validated before it is written.

*/
package gconf
