package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charlievieth/textcase"
)

func formatBool(v bool) string { return strconv.FormatBool(v) }

// formatChar formats the result of CharRight and CharMid. NoChar is printed
// as an empty line.
func formatChar(r rune) string {
	if r == textcase.NoChar {
		return ""
	}
	return string(r)
}

func formatInts(a []int) string {
	var b strings.Builder
	for i, n := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// boolOption returns the value of the named flag if it was set on the
// command line and def otherwise.
func boolOption(cmd *cobra.Command, name string, def bool) bool {
	if cmd.Flags().Changed(name) {
		v, err := cmd.Flags().GetBool(name)
		if err == nil {
			return v
		}
	}
	return def
}

// newPredicateCmd returns a command that prints the result of fn for each
// input.
func newPredicateCmd(opts *options, name, short string, fn func(string) bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [text...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, func(s string) string {
				return formatBool(fn(s))
			})
		},
	}
}

// newClassCmds returns the character class predicate commands.
func newClassCmds(opts *options) []*cobra.Command {
	return []*cobra.Command{
		newPredicateCmd(opts, "is-spaces", "Report whether the text is only spaces", textcase.IsSpaces),
		newPredicateCmd(opts, "is-repeated", "Report whether the text repeats a single character", textcase.IsRepeatedChar),
		newPredicateCmd(opts, "has-vowels", "Report whether the text contains an ASCII vowel", textcase.HasVowels),
		newPredicateCmd(opts, "is-numeric", "Report whether the text is only ASCII digits", textcase.IsNumeric),
		newPredicateCmd(opts, "has-numbers", "Report whether the text contains a decimal digit", textcase.HasNumbers),
		newPredicateCmd(opts, "is-alnum", "Report whether the text is only ASCII letters and digits", textcase.IsAlphaNumeric),
		newPredicateCmd(opts, "is-letters", "Report whether the text is only ASCII letters", textcase.IsLetters),
	}
}

func newAlternateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "alternate [text...]",
		Short: "Alternate the case of each character after the first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, textcase.AlternateCases)
		},
	}
}

func newIsAlternateCmd(opts *options) *cobra.Command {
	return newPredicateCmd(opts, "is-alternate",
		"Report whether the case of each character alternates", textcase.IsAlternateCases)
}

func newTitleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "title [text...]",
		Short: "Upper case the first character of each word",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, textcase.GetTitle)
		},
	}
}

func newIsTitleCmd(opts *options) *cobra.Command {
	return newPredicateCmd(opts, "is-title",
		"Report whether the first character of each word is upper case", textcase.IsTitle)
}

func newInitialsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initials [text...]",
		Short: "Print the initials of each word",
		RunE: func(cmd *cobra.Command, args []string) error {
			capitalize := boolOption(cmd, "capitalize", opts.config.Capitalize)
			includeSpace := boolOption(cmd, "include-space", opts.config.IncludeSpace)
			opts.logger.Debug("Initials",
				zap.Bool("capitalize", capitalize), zap.Bool("include_space", includeSpace))
			return opts.run(cmd, args, func(s string) string {
				return textcase.GetInitials(s, capitalize, includeSpace)
			})
		},
	}
	cmd.Flags().Bool("capitalize", true, "upper case the initials")
	cmd.Flags().Bool("include-space", true, "separate the initials with a space")
	return cmd
}

func newIndexAllCmd(opts *options) *cobra.Command {
	var char string
	cmd := &cobra.Command{
		Use:   "index-all --char C [text...]",
		Short: "Print the index of each occurrence of a character",
		RunE: func(cmd *cobra.Command, args []string) error {
			if utf8.RuneCountInString(char) != 1 {
				return fmt.Errorf("--char must be a single character: %q", char)
			}
			return opts.run(cmd, args, func(s string) string {
				return formatInts(textcase.IndexOfAll(s, char))
			})
		},
	}
	cmd.Flags().StringVarP(&char, "char", "c", "", "character to search for")
	cmd.MarkFlagRequired("char")
	return cmd
}

func newIndexOfCmd(opts *options) *cobra.Command {
	var substr string
	cmd := &cobra.Command{
		Use:   "index-of --substr S [text...]",
		Short: "Print the index of the first occurrence of a substring",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, func(s string) string {
				return strconv.Itoa(textcase.IndexOf(s, substr))
			})
		},
	}
	cmd.Flags().StringVarP(&substr, "substr", "s", "", "substring to search for")
	cmd.MarkFlagRequired("substr")
	return cmd
}

func newCharRightCmd(opts *options) *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "char-right --index N [text...]",
		Short: "Print the character at an index counted from the end",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, func(s string) string {
				return formatChar(textcase.CharRight(s, index))
			})
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 0, "index from the end, the last character is 0")
	return cmd
}

func newCharMidCmd(opts *options) *cobra.Command {
	var start, count int
	cmd := &cobra.Command{
		Use:   "char-mid --start N --count N [text...]",
		Short: "Print the character at index start+count",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, func(s string) string {
				return formatChar(textcase.CharMid(s, start, count))
			})
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "starting index")
	cmd.Flags().IntVar(&count, "count", 0, "offset added to the starting index")
	return cmd
}

func newSubstrCmd(opts *options) *cobra.Command {
	var start, end int
	cmd := &cobra.Command{
		Use:   "substr --start N --end N [text...]",
		Short: "Print the characters in the range [start, end)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if start < 0 || end < 0 {
				return fmt.Errorf("negative substring range: [%d, %d)", start, end)
			}
			return opts.run(cmd, args, func(s string) string {
				return textcase.SubstringEnd(s, start, end)
			})
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "start index (inclusive)")
	cmd.Flags().IntVar(&end, "end", 0, "end index (exclusive)")
	return cmd
}

func newCountCmd(opts *options) *cobra.Command {
	var needle string
	cmd := &cobra.Command{
		Use:   "count --needle S [text...]",
		Short: "Count the occurrences of a substring",
		RunE: func(cmd *cobra.Command, args []string) error {
			ignoreCase := boolOption(cmd, "ignore-case", opts.config.IgnoreCase)
			return opts.run(cmd, args, func(s string) string {
				return strconv.Itoa(textcase.CountTotal(s, needle, ignoreCase))
			})
		},
	}
	cmd.Flags().StringVarP(&needle, "needle", "n", "", "substring to count")
	cmd.Flags().BoolP("ignore-case", "i", false, "ignore case when comparing")
	cmd.MarkFlagRequired("needle")
	return cmd
}

func newReverseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [text...]",
		Short: "Reverse the characters of the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, textcase.Reverse)
		},
	}
}
