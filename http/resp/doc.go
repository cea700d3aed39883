/*
Package resp provides a high-level API for responding to HTTP requests
with JSON, configured once application-wide.

resp provides three ways of responding to an HTTP request:
  - rendering JSON data in the {"data": ..., "currentUser": ...} envelope
  - rendering an error in the same envelope, with the status code matching the error
  - redirecting
*/
package resp
