package notification

import "fmt"

func welcomeMessage(username string) (subject, html, plain string) {
	subject = "Welcome to Gazette"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your reader account has been created.</p>
			<p>You are on the Info plan: every open article is available to you right away.
			Upgrade to Pro to unlock restricted coverage in the verticals you care about.</p>
		</body>
		</html>
	`, username)

	plain = fmt.Sprintf(`Welcome, %s!

Your reader account has been created.

You are on the Info plan: every open article is available to you right away.
Upgrade to Pro to unlock restricted coverage in the verticals you care about.
`, username)

	return subject, html, plain
}

func articleMessage(event Event, title string) (subject, html, plain string) {
	var headline, body string

	switch event {
	case EventArticlePublished:
		headline = "Article published"
		body = fmt.Sprintf("The article %q is now live.", title)
	case EventArticleUnpublished:
		headline = "Article unpublished"
		body = fmt.Sprintf("The article %q was rescheduled to a future date and has been reverted to draft.", title)
	case EventImageProcessed:
		headline = "Image ready"
		body = fmt.Sprintf("The image for article %q has been processed and is now being served.", title)
	case EventImageProcessingFailed:
		headline = "Image processing failed"
		body = fmt.Sprintf("The image for article %q could not be processed. Please upload it again.", title)
	default:
		headline = "Gazette notification"
		body = fmt.Sprintf("There is an update on the article %q.", title)
	}

	subject = fmt.Sprintf("%s: %s", headline, title)

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
		</body>
		</html>
	`, headline, body)

	plain = fmt.Sprintf("%s\n\n%s\n", headline, body)

	return subject, html, plain
}
