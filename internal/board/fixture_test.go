package board

// sampleStore mirrors the classic layout: a 35-tile outer ring with the Big
// Fish Portal, a 24-tile middle ring with the Fall Portal and a 7-tile inner
// ring ending at the throne.
func sampleStore() *Store {
	return MustStore(
		Ring{
			Number:           Ring1,
			Name:             "Street",
			TileCount:        35,
			TileIDOffset:     0,
			RewardMultiplier: 1,
			RiskMultiplier:   1,
			Portal: Portal{
				Index:  17,
				Name:   "Big Fish Portal",
				OnPass: Stay(),
				OnLand: PortalAction{Kind: ActionAscend, TargetRing: Ring2, TargetTile: 200},
			},
		},
		Ring{
			Number:           Ring2,
			Name:             "Executive",
			TileCount:        24,
			TileIDOffset:     200,
			RewardMultiplier: 3,
			RiskMultiplier:   2,
			Portal: Portal{
				Index:  12,
				Name:   "Fall Portal",
				OnPass: PortalAction{Kind: ActionDescend, TargetRing: Ring1, TargetTile: 0},
				OnLand: PortalAction{Kind: ActionAscend, TargetRing: Ring3, TargetTile: 300},
			},
		},
		Ring{
			Number:           Ring3,
			Name:             "Elite",
			TileCount:        7,
			TileIDOffset:     300,
			RewardMultiplier: 10,
			RiskMultiplier:   5,
			Portal: Portal{
				Index:  6,
				Name:   "Throne",
				OnPass: PortalAction{Kind: ActionDescend, TargetRing: Ring2, TargetTile: 200},
				OnLand: PortalAction{Kind: ActionThrone},
			},
		},
	)
}

func actionPtr(a PortalAction) *PortalAction {
	return &a
}
