/*
Package req decodes and validates what clients send the habits API.

A [Parser] fills a pointer to a struct from a JSON body, using json tags,
or from query parameters, using schema tags.
It then checks the struct against its validate tags.
Failures come back as habits sentinel errors;
rule violations as [ValidationErrors] wrapping habits.ErrNotValid,
whichever encoding the payload arrived in.
*/
package req
