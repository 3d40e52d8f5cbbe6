package format

import (
	"fmt"
	"strings"

	"yuno/internal/storage"
)

// The reply texts mirror the bot's established persona; the formatter is
// stateless so every function is a pure string build.

func Pong() string {
	return "💓 **Pong!**\nI'm always here for you~ 💕"
}

func Help(prefix string) string {
	var b strings.Builder
	b.WriteString("💕 **Yuno's Commands** 💕\n")
	b.WriteString("*\"Let me show you everything I can do for you~\"* 💗\n")
	if prefix != "" {
		fmt.Fprintf(&b, "Prefix: `%s`\n", prefix)
	}
	b.WriteString("\n**🔪 Moderation**\n")
	b.WriteString("`ban` - Ban a user\n")
	b.WriteString("`kick` - Kick a user\n")
	b.WriteString("`unban` - Unban a user\n")
	b.WriteString("`timeout` - Timeout a user\n")
	b.WriteString("`clean` - Delete messages\n")
	b.WriteString("`mod-stats` - View moderation stats\n")
	b.WriteString("\n**⚙️ Utility**\n")
	b.WriteString("`ping` - Check latency\n")
	b.WriteString("`prefix` - Set server prefix\n")
	b.WriteString("`source` - View source code\n")
	b.WriteString("`help` - This menu\n")
	b.WriteString("\n**✨ Leveling**\n")
	b.WriteString("`xp` - Check XP and level\n")
	b.WriteString("`leaderboard` - Server rankings\n")
	b.WriteString("\n**🎱 Fun**\n")
	b.WriteString("`8ball` - Ask the magic 8-ball\n")
	b.WriteString("\n💕 *Yuno is always watching over you~* 💕")
	return b.String()
}

func Source() string {
	return "📜 **Source Code**\n" +
		"*\"I have nothing to hide from you~\"* 💕\n\n" +
		"**C# Version**: https://github.com/blubskye/yuno_csharp\n" +
		"**C Version**: https://github.com/blubskye/yuno_c\n" +
		"**PHP Version**: https://github.com/blubskye/yuno_php\n" +
		"**Go Version**: https://github.com/blubskye/yuno-go\n" +
		"**Rust Version**: https://github.com/blubskye/yuno_rust\n" +
		"**Original JS**: https://github.com/japaneseenrichmentorganization/Yuno-Gasai-2\n\n" +
		"Licensed under **AGPL-3.0** 💗"
}

func PrefixUpdated(prefix string) string {
	return fmt.Sprintf("🔧 **Prefix Updated!**\nNew prefix is now: `%s` 💕", prefix)
}

func PrefixCurrent(prefix string) string {
	return fmt.Sprintf("💕 Current prefix: `%s`", prefix)
}

func Banned(targetID, moderatorID, reason string) string {
	return fmt.Sprintf("🔪 **Banned!**\nThey won't bother you anymore~ 💕\n\n"+
		"**User:** <@%s>\n**Moderator:** <@%s>\n**Reason:** %s", targetID, moderatorID, reason)
}

func Kicked(targetID, moderatorID, reason string) string {
	return fmt.Sprintf("👢 **Kicked!**\nGet out! 💢\n\n"+
		"**User:** <@%s>\n**Moderator:** <@%s>\n**Reason:** %s", targetID, moderatorID, reason)
}

func Unbanned(targetID, moderatorID, reason string) string {
	return fmt.Sprintf("💕 **Unbanned!**\nI'm giving them another chance~ Be good this time!\n\n"+
		"**User:** <@%s>\n**Moderator:** <@%s>\n**Reason:** %s", targetID, moderatorID, reason)
}

func TimedOut(targetID, moderatorID string, minutes int64, reason string) string {
	return fmt.Sprintf("⏰ **Timed Out!**\nThink about what you did~ 😤\n\n"+
		"**User:** <@%s>\n**Duration:** %d minutes\n**Moderator:** <@%s>\n**Reason:** %s",
		targetID, minutes, moderatorID, reason)
}

// TimeoutReason is the reason string persisted to the ledger, duration
// included.
func TimeoutReason(reason string, minutes int64) string {
	return fmt.Sprintf("%s (%d minutes)", reason, minutes)
}

func Cleaned(count int) string {
	return fmt.Sprintf("🧹 Deleted %d messages~ 💕", count)
}

func ModStats(userID string, stats storage.ModStats) string {
	total := stats.Bans + stats.Kicks + stats.Timeouts
	return fmt.Sprintf("📊 **Moderation Statistics**\nStats for <@%s>~ 💕\n\n"+
		"**Total Actions:** %d\n🔪 Bans: %d\n👢 Kicks: %d\n⏰ Timeouts: %d",
		userID, total, stats.Bans, stats.Kicks, stats.Timeouts)
}

// XPStats reports level, total XP and progress toward the next boundary at
// (level+1)^2 * 100.
func XPStats(userID string, xp storage.UserXP) string {
	next := int64(xp.Level+1) * int64(xp.Level+1) * 100
	progress := int64(0)
	if next > 0 {
		progress = xp.XP * 100 / next
	}
	return fmt.Sprintf("✨ **XP Stats**\n<@%s>'s progress~ 💕\n\n"+
		"**Level:** %d\n**XP:** %d\n**Progress to Next:** %d%%",
		userID, xp.Level, xp.XP, progress)
}

func Leaderboard(entries []storage.UserXP) string {
	var b strings.Builder
	b.WriteString("🏆 **Server Leaderboard**\n*\"Look who's been the most active~\"* 💕\n\n")
	for i, entry := range entries {
		medal := ""
		switch i {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		}
		fmt.Fprintf(&b, "%s %d. <@%s> - Level %d (%d XP)\n", medal, i+1, entry.UserID, entry.Level, entry.XP)
	}
	if len(entries) == 0 {
		b.WriteString("No one has earned XP yet~")
	}
	return b.String()
}

func LevelUp(userID string, level int) string {
	return fmt.Sprintf("✨ **Level Up!** ✨\nCongratulations <@%s>! You've reached level **%d**! 💕", userID, level)
}

// InsufficientPerms renders the configured permission-denied template,
// replacing ${author} with a mention of the invoker.
func InsufficientPerms(template, authorID string) string {
	return strings.ReplaceAll(template, "${author}", "<@"+authorID+">")
}
