package cli

import "github.com/spf13/pflag"

func addCommentFlag(fs *pflag.FlagSet, comment *string) {
	fs.StringVarP(comment, "comment", "c", "", "Optional comment (single line)")
}
