// Package status polls the backend's realtime status endpoint and keeps the
// dashboard's connection panels in sync with what the server advertises.
package status
