// Package jsonconf provides the JSON implementations of config.Loader.
//
// Two document layouts exist. The standard layout lists builds with their
// flavors and, per item, one directory per functor kind. The simplified
// layout lists one functor base directory per item. Documents are decoded
// into cty values with the go-cty JSON codec and translated into a
// config.Model by walking those values.
package jsonconf
