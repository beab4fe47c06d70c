/*
Package functor resolves the functor scripts of a benchmark item.

A functor is a small script performing one of four roles for an item built
with a given flavor: build, clean, run and analyze. The Manager derives the
script name from the item and flavor, asks the configuration for the
role-specific directory, and combines both into the script path. It never
touches the filesystem.

Naming follows a prefix convention:

	clean    clean_<item>_<flavor>.py
	build    <item>_<flavor>.py
	analyze  analyse_<item>_<flavor>.py
	run      runner_<item>_<flavor>.py

The build functor has no prefix. Existing functor trees rely on that name,
so it must stay as is.
*/
package functor
