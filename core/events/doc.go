// Package events defines the typed orchestration event contract.
//
// Every processed turn emits an ordered sequence drawn from a closed set of
// event types so consumers can handle each variant exhaustively:
//
//   - ToolSelected (turn.tool_selected): the capability chosen for the turn;
//     always first.
//   - Status (turn.status): human-readable progress note; always second.
//   - ResponseSegment (assistant_response.segment): streamed response text
//     segment, append-only in stream order; zero or more, only for the
//     streaming capabilities.
//   - MediaGenerated (assistant_response.media): derived media resource URL;
//     exactly one, only for the image and speech capabilities.
//   - TurnCompleted (turn_state.completed): terminal success marker.
//   - TurnFailed (turn_state.failed): terminal failure marker, emitted instead
//     of TurnCompleted.
//
// No events follow a terminal event.
package events
