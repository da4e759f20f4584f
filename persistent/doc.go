/*
Package persistent is the home of immutable persistent data structures.

Persistent data structures can be "modified" efficiently while leaving the
original unchanged: every modification yields a new incarnation, and the
incarnations share all of the structure which was not touched. Old
incarnations remain valid and may be read concurrently without locks.

Sub-package bst holds an unbalanced binary search tree over strings,
sub-package stack a bounded LIFO stack.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
