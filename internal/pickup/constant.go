package pickup

// Build-time settings; none of these are exposed for runtime override.
const (
	MessageFetchLimit   = 20
	ReminderLookahead   = 7 // days
	ProcessedCodesKey   = "sms_processed_codes"
	ReminderListTitle   = "取件码"
	ReminderPriority    = 5
	NotificationTitle   = "快递取件提醒"
	reminderTitleFmt    = "取件码: %s"
	reminderNotesFmt    = "位置: %s\n原文: %s"
	notificationBodyFmt = "凭取件码 %s 至 %s 取件"
)
