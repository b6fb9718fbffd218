// Package menu holds the pickers the editor shows on top of the diagram.
//
// Menus keep only transient state of their own, such as search text or
// whether they are open. Everything they list comes from snapshots of the
// graph controller and every action goes through a controller operation.
package menu
