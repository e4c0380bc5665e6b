/*
Package linkage is the root of a small collection of pointer-based containers.

Sub-packages:

  - bst: an unbalanced binary search tree with add, lookup, delete and
    depth-first traversals
  - slist: a singly linked list with O(1) operations at its head and at its tail
  - maybe: the optional value returned by accessors of both containers

The containers are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linkage
