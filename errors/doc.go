// Package errors provides the closed error taxonomy shared by every provider
// integration. Any failure, whether raised by a transport, a decoder or a
// provider, is converted into a StandardError carrying one of nine codes.
package errors
