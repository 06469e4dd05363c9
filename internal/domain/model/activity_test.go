package model_test

import (
	"testing"

	model "github.com/mergington/signups/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestActivity(t *testing.T) {
	convey.Convey("Given an Activity", t, func() {
		activity := model.Activity{
			Description:     "Learn tennis skills and participate in friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"alex@mergington.edu"},
		}

		convey.Convey("When checking participant membership", func() {
			convey.Convey("Then it should find a registered email", func() {
				convey.So(activity.HasParticipant("alex@mergington.edu"), convey.ShouldBeTrue)
			})

			convey.Convey("And it should not find an unregistered email", func() {
				convey.So(activity.HasParticipant("new@mergington.edu"), convey.ShouldBeFalse)
			})

			convey.Convey("And matching should be exact, not case-insensitive", func() {
				convey.So(activity.HasParticipant("Alex@mergington.edu"), convey.ShouldBeFalse)
				convey.So(activity.HasParticipant(" alex@mergington.edu"), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When computing spots left", func() {
			convey.So(activity.SpotsLeft(), convey.ShouldEqual, 15)
		})

		convey.Convey("When cloning", func() {
			clone := activity.Clone()
			clone.Participants[0] = "other@mergington.edu"

			convey.Convey("Then the original participant list should be untouched", func() {
				convey.So(activity.Participants[0], convey.ShouldEqual, "alex@mergington.edu")
			})
		})
	})
}

func TestRoster(t *testing.T) {
	convey.Convey("Given the default roster", t, func() {
		roster := model.DefaultRoster()

		convey.Convey("Then it should contain the seed activities", func() {
			convey.So(roster, convey.ShouldContainKey, "Tennis Club")
			convey.So(roster, convey.ShouldContainKey, "Basketball Team")
			convey.So(roster, convey.ShouldContainKey, "Chess Club")
		})

		convey.Convey("And every activity should be fully populated", func() {
			for name, a := range roster {
				convey.So(name, convey.ShouldNotBeBlank)
				convey.So(a.Description, convey.ShouldNotBeBlank)
				convey.So(a.Schedule, convey.ShouldNotBeBlank)
				convey.So(a.MaxParticipants, convey.ShouldBeGreaterThan, 0)
				convey.So(a.Participants, convey.ShouldNotBeNil)
			}
		})

		convey.Convey("When counting participants", func() {
			convey.So(roster.ParticipantCount(), convey.ShouldEqual, 12)
		})

		convey.Convey("When cloning the roster", func() {
			clone := roster.Clone()
			tennis := clone["Tennis Club"]
			tennis.Participants = append(tennis.Participants, "extra@mergington.edu")
			clone["Tennis Club"] = tennis

			convey.Convey("Then the original should be unchanged", func() {
				convey.So(len(roster["Tennis Club"].Participants), convey.ShouldEqual, 1)
			})
		})
	})
}
