/*
Package persistent is the home of immutable persistent data structures.

Immutable persistent data structures can be copied and "modified" efficiently,
leaving the original unchanged. Functional programming languages like Lisp have
long relied on them. Persistent immutable data structures offer structural
sharing: if two data structures are mostly copies of each other, most of the
memory they take up is shared between them. Making a copy is therefore cheap in
terms of space- and time-complexity.

The matcher of this module takes a snapshot of its complete search state at every
point of ambiguity. With the structures of sub-package list, a snapshot is a
copy of a couple of list headers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
