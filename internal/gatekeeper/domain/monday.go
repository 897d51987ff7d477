package domain

// MondayCatalogName is the name of the built-in monday.com MCP catalog.
const MondayCatalogName = "monday"

// mondayReadOperations are the monday.com MCP tools known to be side-effect-free.
var mondayReadOperations = []string{
	"mcp_monday-mcp_get_board_items_page",
	"mcp_monday-mcp_get_board_info",
	"mcp_monday-mcp_get_board_activity",
	"mcp_monday-mcp_board_insights",
	"mcp_monday-mcp_list_users_and_teams",
	"mcp_monday-mcp_list_workspaces",
	"mcp_monday-mcp_workspace_info",
	"mcp_monday-mcp_search",
	"mcp_monday-mcp_read_docs",
	"mcp_monday-mcp_get_form",
	"mcp_monday-mcp_get_graphql_schema",
	"mcp_monday-mcp_get_type_details",
	"mcp_monday-mcp_get_column_type_info",
	"mcp_monday-mcp_get_monday_dev_sprints_boards",
	"mcp_monday-mcp_get_sprints_metadata",
	"mcp_monday-mcp_get_sprint_summary",
}

// mondayWriteOperations are the monday.com MCP tools that mutate stored data.
var mondayWriteOperations = []string{
	"mcp_monday-mcp_create_item",
	"mcp_monday-mcp_change_item_column_values",
	"mcp_monday-mcp_create_update",
	"mcp_monday-mcp_create_board",
	"mcp_monday-mcp_create_form",
	"mcp_monday-mcp_update_form",
	"mcp_monday-mcp_form_questions_editor",
	"mcp_monday-mcp_create_column",
	"mcp_monday-mcp_create_group",
	"mcp_monday-mcp_create_doc",
	"mcp_monday-mcp_create_dashboard",
	"mcp_monday-mcp_create_widget",
	"mcp_monday-mcp_update_workspace",
	"mcp_monday-mcp_update_folder",
	"mcp_monday-mcp_create_workspace",
	"mcp_monday-mcp_create_folder",
	"mcp_monday-mcp_move_object",
	"mcp_monday-mcp_delete_item",
	"mcp_monday-mcp_archive_item",
	"mcp_monday-mcp_duplicate_board",
}

// MondayCatalog classifies monday.com MCP tool names.
var MondayCatalog = MustCatalog(MondayCatalogName, mondayReadOperations, mondayWriteOperations)
