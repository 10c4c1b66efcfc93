/*
Package errors implements coded root errors for the ledger.

Reuse the errors declared in this package whenever possible and declare a
custom package error only when nothing here describes the failure. Custom
errors are declared with Register(code, description) and each code may be
used only once.

Always create an error instance at the point of failure, using ErrXyz.New,
ErrXyz.Newf or Wrap, so that a stack trace is attached. Do not declare
instances as package globals (var ErrFoo = ErrInput.New("foo")) as that
records a useless stack trace.

Once you have an error, fmt gives you more context:
	%s is just the error message
	%+v is the full stack trace
*/
package errors
