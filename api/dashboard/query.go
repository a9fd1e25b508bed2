package dashboard

import "net/url"

func (p *GetOrganizationUplinksLossAndLatencyParams) values() (url.Values, error) {
	if p == nil {
		return nil, nil //nolint:nilnil // No parameters, no query string
	}

	q := url.Values{}
	return queryValues(q,
		addQuery(q, "t0", p.T0),
		addQuery(q, "t1", p.T1),
		addQuery(q, "timespan", p.Timespan),
		addQuery(q, "uplink", p.Uplink),
		addQuery(q, "ip", p.IP),
	)
}

func (p *GetOrganizationNetworksParams) values() (url.Values, error) {
	if p == nil {
		return nil, nil //nolint:nilnil // No parameters, no query string
	}

	q := url.Values{}
	return queryValues(q, addQuery(q, "configTemplateId", p.ConfigTemplateID))
}

func (p *GetNetworkTrafficParams) values() (url.Values, error) {
	if p == nil {
		return nil, nil //nolint:nilnil // No parameters, no query string
	}

	q := url.Values{}
	return queryValues(q,
		addQuery(q, "timespan", p.Timespan),
		addQuery(q, "deviceType", p.DeviceType),
	)
}

func (p *GetDeviceClientsParams) values() (url.Values, error) {
	if p == nil {
		return nil, nil //nolint:nilnil // No parameters, no query string
	}

	q := url.Values{}
	return queryValues(q,
		addQuery(q, "t0", p.T0),
		addQuery(q, "timespan", p.Timespan),
	)
}

func (p *GetNetworkClientsParams) values() (url.Values, error) {
	if p == nil {
		return nil, nil //nolint:nilnil // No parameters, no query string
	}

	q := url.Values{}
	return queryValues(q,
		addQuery(q, "t0", p.T0),
		addQuery(q, "timespan", p.Timespan),
		addQuery(q, "perPage", p.PerPage),
		addQuery(q, "startingAfter", p.StartingAfter),
		addQuery(q, "endingBefore", p.EndingBefore),
	)
}
