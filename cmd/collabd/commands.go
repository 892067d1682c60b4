package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the store schema (idempotent)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Initialize(); err != nil {
				return err
			}
			fmt.Printf("Initialized store at %s\n", opts.cfg.StorePath)
			return nil
		},
	}
}

func newGroupsCommand(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			groups, err := store.SelectGroups(name, 0)
			if err != nil {
				return err
			}
			for _, group := range groups {
				fmt.Printf("%s\t%s\n", group.Name, group.Date)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "filter by group name")
	return cmd
}

func newProjectsCommand(opts *rootOptions) *cobra.Command {
	var group, name string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			projects, err := store.SelectProjects(group, name, 0)
			if err != nil {
				return err
			}
			for _, project := range projects {
				fmt.Printf("%s/%s\t%s\t%s\t%s\t%s\n",
					project.GroupName, project.Name,
					project.Hash, project.File, project.Type, project.Date)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "filter by group name")
	cmd.Flags().StringVar(&name, "name", "", "filter by project name")
	return cmd
}

func newDatabasesCommand(opts *rootOptions) *cobra.Command {
	var group, project, name string

	cmd := &cobra.Command{
		Use:   "databases",
		Short: "List databases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			databases, err := store.SelectDatabases(group, project, name, 0)
			if err != nil {
				return err
			}
			for _, database := range databases {
				tick, err := store.LastTick(database.GroupName, database.Project, database.Name)
				if err != nil {
					return err
				}
				fmt.Printf("%s/%s/%s\t%s\ttick=%d\n",
					database.GroupName, database.Project, database.Name,
					database.Date, tick)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "filter by group name")
	cmd.Flags().StringVar(&project, "project", "", "filter by project name")
	cmd.Flags().StringVar(&name, "name", "", "filter by database name")
	return cmd
}

func newEventsCommand(opts *rootOptions) *cobra.Command {
	var group, project, database string
	var since int64

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print events in a scope with tick greater than --since",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			events, err := store.SelectEvents(group, project, database, since)
			if err != nil {
				return err
			}
			for _, event := range events {
				args, err := json.Marshal(event.Args)
				if err != nil {
					return err
				}
				fmt.Printf("%d\t%s\t%s\n", event.Tick, event.Type, args)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "group name (required)")
	cmd.Flags().StringVar(&project, "project", "", "project name (required)")
	cmd.Flags().StringVar(&database, "database", "", "database name (required)")
	cmd.Flags().Int64Var(&since, "since", 0, "print events with tick greater than this")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("database")
	return cmd
}

func newLastTickCommand(opts *rootOptions) *cobra.Command {
	var group, project, database string

	cmd := &cobra.Command{
		Use:   "last-tick",
		Short: "Print the highest tick recorded for a scope (0 if none)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			tick, err := store.LastTick(group, project, database)
			if err != nil {
				return err
			}
			fmt.Printf("%d\n", tick)
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "group name (required)")
	cmd.Flags().StringVar(&project, "project", "", "project name (required)")
	cmd.Flags().StringVar(&database, "database", "", "database name (required)")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("database")
	return cmd
}

func newRenameProjectCommand(opts *rootOptions) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "rename-project <old-name> <new-name>",
		Short: "Rename a project across the projects, databases and events tables",
		Long: `Rename a project and re-home its databases and events.

The three table updates commit independently. If this command is interrupted
part-way, rerun it to finish re-homing the remaining tables.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.RenameProject(group, args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed %s/%s to %s/%s\n", group, args[0], group, args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "group name (required)")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}
