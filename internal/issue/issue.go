// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies one validation failure class in the catalog.
type Id int

const (
	InvalidIntegerId Id = iota + 1
	IntegerOutOfRangeId
	InputNotDirectoryId
	ConflictingFlagsId
	MissingFlagDependencyId
)

// Issue is a remediation card for one failure class. The Markdown body is
// rendered with glamour when the user asks for verbose diagnostics.
type Issue struct {
	id    Id
	mdMsg string // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() string {
	return i.mdMsg
}

// Render returns the card rendered for the terminal using the named glamour
// style (e.g. "dark").
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.mdMsg, stylePath)
}

var (
	render = glamour.Render

	invalidIntegerIssue = &Issue{
		id: InvalidIntegerId,
		mdMsg: `
# That flag wants a whole number!

A numeric flag received a value that is not an integer.

## Things you can try:
- Pass a plain decimal number, without units or signs:
~~~
$ spritec icons out --ratio 2
~~~
- Check for shell quoting accidents (a stray space turns one value into two)`,
	}

	integerOutOfRangeIssue = &Issue{
		id: IntegerOutOfRangeId,
		mdMsg: `
# Number out of range!

A numeric flag received an integer outside its accepted bounds.

## Accepted ranges:
- **--ratio**: 1-255 (output pixel ratio)
- **--spacing**: 0-255 (pixels between sprites)
- **--oxipng**: 0-6 (optimization level)
- **--zopfli**: 1-255 (iterations; higher is slower)

## Things you can try:
- Re-run with a value inside the range shown in the error message`,
	}

	inputNotDirectoryIssue = &Issue{
		id: InputNotDirectoryId,
		mdMsg: `
# Input directory not found!

The first positional argument must be an existing directory of images.

## Things you can try:
- Check the path for typos, and that it points at a directory, not a file:
~~~
$ ls -d path/to/icons
$ spritec path/to/icons out
~~~
- Create the directory and add your images before re-running`,
	}

	conflictingFlagsIssue = &Issue{
		id: ConflictingFlagsId,
		mdMsg: `
# Conflicting flags!

Two mutually exclusive flags were supplied together.

## Exclusive groups:
- **--ratio** / **--retina** (--retina is shorthand for --ratio=2)
- **--oxipng** / **--zopfli** (pick one PNG optimization strategy)

## Things you can try:
- Drop one of the two flags named in the error message:
~~~
$ spritec icons out --retina
$ spritec icons out --ratio 3
~~~`,
	}

	missingFlagDependencyIssue = &Issue{
		id: MissingFlagDependencyId,
		mdMsg: `
# Missing companion flag!

A flag that only makes sense alongside another one was supplied on its own.

## Dependencies:
- **--include-center** records the pre-crop center of each sprite, so it
  requires **--crop**

## Things you can try:
- Add the required flag:
~~~
$ spritec icons out --crop --include-center
~~~`,
	}

	issues = map[Id]*Issue{
		invalidIntegerIssue.Id():        invalidIntegerIssue,
		integerOutOfRangeIssue.Id():     integerOutOfRangeIssue,
		inputNotDirectoryIssue.Id():     inputNotDirectoryIssue,
		conflictingFlagsIssue.Id():      conflictingFlagsIssue,
		missingFlagDependencyIssue.Id(): missingFlagDependencyIssue,
	}
)

// Values returns every card in the catalog, ordered by Id.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	cards := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		cards = append(cards, issues[id])
	}
	return cards
}

// Get returns the card for the given Id, or nil if none is registered.
func Get(id Id) *Issue {
	return issues[id]
}
