package inbox

import (
	"sort"

	"github.com/propdesk/messaging-service/internal/model"
)

// Summarize groups messages by conversation and orders the groups by their latest message,
// most recent first. A conversation marked in read reports zero unread, otherwise every
// message in it counts as unread.
//
// Equal timestamps are resolved by insertion sequence: the later-inserted message is the
// latest, and its conversation sorts first.
func Summarize(messages model.MessageList, read map[model.ConversationKey]bool, names NameResolver) model.ConversationSummaryList {
	summaries := make(model.ConversationSummaryList, 0)
	index := make(map[model.ConversationKey]int)

	for _, msg := range messages {
		key := msg.Key()
		pos, ok := index[key]
		if !ok {
			pos = len(summaries)
			index[key] = pos
			summaries = append(summaries, model.ConversationSummary{
				Kind:           key.Kind,
				ConversationID: key.ID,
				DisplayName:    names.ResolveName(key.Kind, key.ID),
				LatestMessage:  msg,
			})
		}

		summary := &summaries[pos]
		summary.MessageCount++
		if msg.After(summary.LatestMessage) {
			summary.LatestMessage = msg
		}
	}

	for i := range summaries {
		if !read[summaries[i].Key()] {
			summaries[i].UnreadCount = summaries[i].MessageCount
		}
	}

	sort.SliceStable(summaries, func(a, b int) bool {
		return summaries[a].LatestMessage.After(summaries[b].LatestMessage)
	})

	return summaries
}

// UnreadTotals sums the unread counts of summaries per conversation kind.
func UnreadTotals(summaries model.ConversationSummaryList) map[model.ConversationKind]int {
	totals := map[model.ConversationKind]int{
		model.PropertyConversation: 0,
		model.BidConversation:      0,
	}
	for _, s := range summaries {
		totals[s.Kind] += s.UnreadCount
	}
	return totals
}
