package dataset

import (
	"fmt"

	"github.com/takasapp/takas-admin-api/internal/models"
)

var messageStatusWeights = []weightedChoice[models.MessageStatus]{
	{Weight: 20, Value: models.MessageSent},
	{Weight: 35, Value: models.MessageDelivered},
	{Weight: 45, Value: models.MessageRead},
}

func (gen *generator) generateMessages() {
	if len(gen.snap.Threads) == 0 {
		return
	}

	messages := make([]models.ChatMessage, 0, gen.opts.Messages)
	for i := 0; i < gen.opts.Messages; i++ {
		thread := pickOne(gen.g, gen.snap.Threads)
		sender := pickOne(gen.g, thread.UserIDs)

		var images []string
		if gen.g.chance(0.08) {
			images = gen.makeImageURLs(gen.g.intBetween(1, 2))
		}

		messages = append(messages, models.ChatMessage{
			ID:           models.ID(fmt.Sprintf("m_%d", i+1)),
			ThreadID:     thread.ID,
			SenderUserID: sender,
			Text:         pickOne(gen.g, turkishSentences),
			Images:       images,
			Time:         gen.randomDaysAgo(0, 14),
			IsRead:       gen.g.chance(0.75),
			Status:       weightedPick(gen.g, messageStatusWeights),
		})
	}

	gen.snap.Messages = messages
}
