// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mdhender/ntree"
	"github.com/mdhender/ntree/outline"
	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "ntree",
		Short: "named-node tree utility",
		Long:  `Build, query, and render trees of named nodes`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("ntree: version %q\n", ntree.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdDemo())
	cmdRoot.AddCommand(cmdRender())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdDemo() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "demo",
		Short:        "build a sample tree and walk it through mutations",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")

			root, err := buildDemoTree()
			if err != nil {
				return err
			}
			fmt.Println(root)
			fmt.Println()

			// batch attachment
			b := root.Find("B")
			b1, err := ntree.New("B1")
			if err != nil {
				return err
			}
			b2, err := ntree.New("B2")
			if err != nil {
				return err
			}
			if err := b.AddChildren(b1, b2); err != nil {
				return err
			}
			if !quiet {
				log.Printf("demo: attached B1 and B2 under B\n")
			}
			fmt.Println(root)
			fmt.Println()

			// move the C subtree under B
			c := root.Find("C")
			if err := root.Move(c, b); err != nil {
				return err
			}
			if !quiet {
				log.Printf("demo: moved C under B\n")
			}
			fmt.Println(root)

			return nil
		},
	}
	return cmd
}

// buildDemoTree builds the canonical sample tree:
//
//	root
//	├── A
//	│   ├── A1
//	│   └── A2
//	│       ├── A21
//	│       └── A22
//	├── B
//	└── C
//	    ├── C1
//	    └── C2
//	        ├── C21
//	        └── C22
func buildDemoTree() (*ntree.Node, error) {
	root, err := ntree.New("")
	if err != nil {
		return nil, err
	}
	nodes := map[string]*ntree.Node{"root": root}
	for _, link := range []struct {
		name, parent string
	}{
		{"A", "root"},
		{"A1", "A"},
		{"A2", "A"},
		{"A21", "A2"},
		{"A22", "A2"},
		{"B", "root"},
		{"C", "root"},
		{"C1", "C"},
		{"C2", "C"},
		{"C21", "C2"},
		{"C22", "C2"},
	} {
		node, err := ntree.New(link.name, ntree.WithParent(nodes[link.parent]))
		if err != nil {
			return nil, err
		}
		nodes[link.name] = node
	}
	return root, nil
}

func cmdRender() *cobra.Command {
	var outputFile string
	var rootName string
	tabWidth := 4
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save rendering to file")
		cmd.Flags().StringVar(&rootName, "root-name", rootName, "name for the synthetic root node")
		cmd.Flags().IntVar(&tabWidth, "tab-width", tabWidth, "spaces per indentation level")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "render <outline-file>",
		Short:        "render an indented outline file as a tree",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := []outline.Option{outline.WithTabWidth(tabWidth)}
			if rootName != "" {
				options = append(options, outline.WithRootName(rootName))
			}
			root, err := outline.ParsePath(args[0], options...)
			if err != nil {
				return err
			}

			if outputFile == "" {
				fmt.Println(root)
				return nil
			}
			data := []byte(root.String() + "\n")
			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				return err
			}
			log.Printf("%s: wrote %d bytes\n", outputFile, len(data))
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(ntree.Version().String())
				return nil
			}
			fmt.Println(ntree.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
