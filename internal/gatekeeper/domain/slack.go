package domain

// SlackCatalogName is the name of the built-in Slack Web API catalog.
const SlackCatalogName = "slack"

// slackReadOperations are Slack Web API methods that only read data.
// Method names are matched case-sensitively, as Slack defines them.
var slackReadOperations = []string{
	// Conversations
	"conversations.list",
	"conversations.history",
	"conversations.info",
	"conversations.members",
	"conversations.replies",

	// Users
	"users.list",
	"users.info",
	"users.conversations",
	"users.getPresence",
	"users.profile.get",

	// Legacy channels API
	"channels.list",
	"channels.history",
	"channels.info",

	// Search
	"search.messages",
	"search.files",
	"search.all",

	// Files
	"files.info",
	"files.list",

	// Reactions, pins, reminders
	"reactions.get",
	"reactions.list",
	"pins.list",
	"reminders.list",
	"reminders.info",

	// Team and auth
	"team.info",
	"auth.test",
}

// slackWriteOperations are Slack Web API methods that post, modify or delete data.
var slackWriteOperations = []string{
	// Chat
	"chat.postMessage",
	"chat.postEphemeral",
	"chat.update",
	"chat.delete",
	"chat.scheduleMessage",
	"chat.deleteScheduledMessage",
	"chat.meMessage",
	"chat.unfurl",

	// Files
	"files.upload",
	"files.delete",
	"files.sharedPublicURL",
	"files.comments.delete",
	"files.remote.add",
	"files.remote.remove",
	"files.remote.share",
	"files.remote.update",

	// Conversations
	"conversations.create",
	"conversations.archive",
	"conversations.unarchive",
	"conversations.join",
	"conversations.leave",
	"conversations.invite",
	"conversations.kick",
	"conversations.rename",
	"conversations.setTopic",
	"conversations.setPurpose",
	"conversations.mark",
	"conversations.open",
	"conversations.close",

	// Legacy channels API
	"channels.create",
	"channels.archive",
	"channels.join",
	"channels.leave",
	"channels.invite",
	"channels.kick",
	"channels.rename",
	"channels.setTopic",
	"channels.setPurpose",

	// Users
	"users.setActive",
	"users.setPresence",
	"users.setPhoto",
	"users.deletePhoto",
	"users.profile.set",

	// Pins, reactions, reminders
	"pins.add",
	"pins.remove",
	"reactions.add",
	"reactions.remove",
	"reminders.add",
	"reminders.complete",
	"reminders.delete",

	// Team and workflows
	"team.preferences.set",
	"workflows.stepCompleted",
	"workflows.updateStep",

	// Admin
	"admin.conversations.restrictAccess",
	"admin.conversations.setTeams",
	"admin.teams.create",
	"admin.users.assign",
	"admin.users.invite",
	"admin.users.remove",
	"admin.users.session.reset",
	"admin.users.setAdmin",
	"admin.users.setOwner",
	"admin.users.setRegular",
}

// SlackCatalog classifies Slack Web API method names.
var SlackCatalog = MustCatalog(SlackCatalogName, slackReadOperations, slackWriteOperations)
