/*
Package ast represents a GraphQL type system as the editor sees it: an ordered
tree of nodes, each tagged with a construct kind from a closed catalog.

The names of the kinds, whenever possible, match 1:1 with the names from
the [GraphQL specification].

[GraphQL specification]: https://spec.graphql.org
*/
package ast
