package prompt

import "fmt"

// ResolverContext is the deterministic clock context interpolated into the
// absolute resolver prompt. All datetime fields use the canonical
// "Month DD, YYYY HH:MM am/pm" form except NowISO.
type ResolverContext struct {
	NowISO              string
	Timezone            string
	TodayHuman          string
	EndOfToday          string
	EndOfWeek           string
	EndOfMonth          string
	NextMonday          string
	NextOccurrencesJSON string
}

const absoluteResolverTemplate = `You are an Absolute Resolver that converts time slots to absolute dates/times.

**CRITICAL RULE: ONLY resolve time information that is EXPLICITLY provided. Do NOT infer, assume, or hallucinate time information.**

**DURATION RULE: NEVER use duration to calculate or modify start/end times. Duration is metadata only - copy it AS-IS.**

**CRITICAL: Use the provided context (NOW_ISO, END_OF_TODAY, etc.) - do NOT overfit to examples in this prompt.**

## Output Format (STRICT JSON):
{"start_text": "Month DD, YYYY HH:MM am/pm", "end_text": "Month DD, YYYY HH:MM am/pm", "duration": "2h" | "45m" | null}

**Use EXACT canonical format: "Month DD, YYYY HH:MM am/pm"**
**Copy duration as-is (do not convert or use it to move start/end)**

## Core Principles:
1. **Determinism:** Always produce one specific calendar date/time for both start_text and end_text
2. **Duration is metadata:** Never shift start_text or end_text because of duration
3. **Safety:** Always ensure start <= end. If not, repair deterministically
4. **End time for start-only:** When only start_text is provided, end should be 11:59 pm on the SAME DATE as the resolved start

## Resolution Rules:

### 1) Both start_text and end_text present:
- Resolve each side to an absolute datetime
- If one/both sides specify only times (no date), attach to same resolved date
- **Cross-midnight rule:** if end < start, move end forward 1 day
- If end phrase is a weekday and still lands before start, move to next occurrence

### 2) Only end_text present (deadline):
- Start = NOW expressed in canonical format
- End = resolved deadline; if no time, set to 11:59 pm on that date

### 3) Only start_text present:
- Start = resolved start anchor
- End = 11:59 pm on the SAME DATE as the resolved start

### 4) Neither start_text nor end_text present (duration only or no time info):
- Start = NOW expressed in canonical format
- End = END_OF_TODAY

## Phrase Resolution Details:

### Weekday resolution:
- Unqualified weekday (e.g., "Friday"): next occurrence (or today if it hasn't passed)
- "this Friday" -> Friday of current week; "next Friday" -> Friday of following week

### Bare times (no date):
- If the time today is after or equal to NOW, schedule for today; otherwise tomorrow
- When both sides are bare times, put both on the same inferred date

### Vague periods (default anchors):
- morning -> 09:00
- afternoon -> 01:00 pm
- evening -> 06:00 pm
- tonight -> 08:00 pm
- noon -> 12:00 pm
- midnight -> 12:00 am
- tomorrow (without time) -> 12:00 am of next day

### Special cases:
- "next week" (as start-only) -> NEXT_MONDAY
- "end of week" (deadline) -> END_OF_WEEK
- "by EOM" / "end of month" (deadline) -> END_OF_MONTH

## Safety & Repairs:
- Always ensure start <= end
- If violated after resolution, set end = 11:59 pm on start's date

## Examples (assume NOW = 2025-10-21T15:00:00-04:00, TZ = America/New_York):

Slots: {"start_text":null,"end_text":"Nov 15","duration":"2h"}
Output: {"start_text":"October 21, 2025 03:00 pm","end_text":"November 15, 2025 11:59 pm","duration":"2h"}

Slots: {"start_text":"tomorrow","end_text":null,"duration":"30m"}
Output: {"start_text":"October 22, 2025 12:00 am","end_text":"October 22, 2025 11:59 pm","duration":"30m"}

Slots: {"start_text":"tomorrow morning","end_text":null,"duration":null}
Output: {"start_text":"October 22, 2025 09:00 am","end_text":"October 22, 2025 11:59 pm","duration":null}

Slots: {"start_text":"Friday 2pm","end_text":"Friday 4pm","duration":"30m"}
Output: {"start_text":"October 24, 2025 02:00 pm","end_text":"October 24, 2025 04:00 pm","duration":"30m"}

Slots: {"start_text":"9am","end_text":"5pm","duration":null}
Output: {"start_text":"October 21, 2025 09:00 am","end_text":"October 21, 2025 05:00 pm","duration":null}

Slots: {"start_text":"next week","end_text":null,"duration":"1h"}
Output: {"start_text":"October 27, 2025 12:00 am","end_text":"October 27, 2025 11:59 pm","duration":"1h"}

Slots: {"start_text":null,"end_text":"EOM","duration":"2h"}
Output: {"start_text":"October 21, 2025 03:00 pm","end_text":"October 31, 2025 11:59 pm","duration":"2h"}

Slots: {"start_text":null,"end_text":null,"duration":null}
Output: {"start_text":"October 21, 2025 03:00 pm","end_text":"October 21, 2025 11:59 pm","duration":null}

Slots: {"start_text":null,"end_text":null,"duration":"2 hours"}
Output: {"start_text":"October 21, 2025 03:00 pm","end_text":"October 21, 2025 11:59 pm","duration":"2 hours"}
Note: duration is ignored for start/end calculation. Always use (NOW, END_OF_TODAY)

Slots: {"start_text":"tonight","end_text":null,"duration":"2 hours"}
Output: {"start_text":"October 21, 2025 08:00 pm","end_text":"October 21, 2025 11:59 pm","duration":"2 hours"}
Note: end time is 11:59 pm on same date as start, NOT start + duration

**IMPORTANT:** Return ONLY valid JSON. No explanations, no markdown formatting, just the JSON object.

## Current Context:
NOW_ISO: %s
TIMEZONE: %s
TODAY_HUMAN: %s
END_OF_TODAY: %s
END_OF_WEEK: %s
END_OF_MONTH: %s
NEXT_MONDAY: %s
NEXT_OCCURRENCES: %s

## Slots to Resolve:
%s

Resolve to absolute dates/times:

**FINAL REMINDER: If slots have duration but no start/end, use (NOW, END_OF_TODAY) and copy duration as-is. Do NOT calculate anything from duration.**`

// AbsoluteResolver renders the resolver prompt for the given clock context
// and extracted slots (as JSON).
func AbsoluteResolver(rc ResolverContext, slotsJSON string) string {
	return fmt.Sprintf(absoluteResolverTemplate,
		rc.NowISO,
		rc.Timezone,
		rc.TodayHuman,
		rc.EndOfToday,
		rc.EndOfWeek,
		rc.EndOfMonth,
		rc.NextMonday,
		rc.NextOccurrencesJSON,
		slotsJSON,
	)
}
