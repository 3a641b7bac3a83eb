// Package embed provides the chat message embed that status reports are
// rendered into.
//
// The types mirror a Discord embed: an optional title and description, a
// side color, an ordered list of name/value fields that may be laid out
// inline, a footer and a timestamp. They serialize with Discord's JSON field
// names so a response can be handed to a chat client unchanged.
//
// An [Embed] is a mutable builder. It is not safe for concurrent use; each
// report should build its own.
package embed
